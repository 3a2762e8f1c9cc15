package cli

// Flags holds all command-line flag values
type Flags struct {
	ConfigDir  string
	From       string
	To         string
	InputFile  string
	OutputFile string
	Provider   string
	Yes        bool
	Verbose    bool

	// Mode flags, each short-circuits the normal translation run
	ShowLanguages bool
	ShowUsage     bool
	ShowHistory   bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		From: "en",
		To:   "th",
	}
}
