package internal

// Version is the current release version of cloudtranslate
const Version = "v0.1.0"
