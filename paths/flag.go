package paths

import (
	"flag"
	"os"
)

// SetupLocaleFlag creates a string flag with the passed name selecting the
// locale tree searched for textures. It defaults to $SSBP_LOCALE, or EN.
func SetupLocaleFlag(flagName string, flagPtr *string) {
	def := os.Getenv("SSBP_LOCALE")
	if def == "" {
		def = DEFAULT_LOCALE
	}
	flag.StringVar(flagPtr, flagName, def, "Locale whose textures are used when the common tree lacks them")
}
