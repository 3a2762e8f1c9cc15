// Package translation provides text translation between languages
// through cloud providers. The default is the Google Cloud Translation
// API v2; OpenAI and Gemini chat models are available as alternatives.
// All providers implement the Translator interface and are wrapped in
// a circuit breaker by the factory.
package translation
