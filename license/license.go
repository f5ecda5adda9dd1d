// Package license resolves Creative Commons licence URLs to human-readable
// names. No network calls; the mapping table is static.
package license

import "strings"

// names maps a canonical, trailing-slash-stripped CC licence URL to its
// display name. Grounded on the Rust cc_license crate's table as used by
// thoth-export-server's ONIX 3.1 driver (write_license).
var names = map[string]string{
	"https://creativecommons.org/licenses/by/4.0":       "Creative Commons Attribution 4.0 International license (CC BY 4.0).",
	"https://creativecommons.org/licenses/by-sa/4.0":    "Creative Commons Attribution Share Alike 4.0 International license (CC BY-SA 4.0).",
	"https://creativecommons.org/licenses/by-nd/4.0":    "Creative Commons Attribution No Derivatives 4.0 International license (CC BY-ND 4.0).",
	"https://creativecommons.org/licenses/by-nc/4.0":    "Creative Commons Attribution Non-Commercial 4.0 International license (CC BY-NC 4.0).",
	"https://creativecommons.org/licenses/by-nc-sa/4.0": "Creative Commons Attribution Non-Commercial Share Alike 4.0 International license (CC BY-NC-SA 4.0).",
	"https://creativecommons.org/licenses/by-nc-nd/4.0": "Creative Commons Attribution Non-Commercial No Derivatives 4.0 International license (CC BY-NC-ND 4.0).",
	"https://creativecommons.org/publicdomain/zero/1.0": "Creative Commons CC0 1.0 Universal (CC0 1.0) Public Domain Dedication.",
	"https://creativecommons.org/licenses/by/3.0":       "Creative Commons Attribution 3.0 Unported license (CC BY 3.0).",
	"https://creativecommons.org/licenses/by-sa/3.0":    "Creative Commons Attribution Share Alike 3.0 Unported license (CC BY-SA 3.0).",
	"https://creativecommons.org/licenses/by-nd/3.0":    "Creative Commons Attribution No Derivatives 3.0 Unported license (CC BY-ND 3.0).",
	"https://creativecommons.org/licenses/by-nc/3.0":    "Creative Commons Attribution Non-Commercial 3.0 Unported license (CC BY-NC 3.0).",
	"https://creativecommons.org/licenses/by-nc-sa/3.0": "Creative Commons Attribution Non-Commercial Share Alike 3.0 Unported license (CC BY-NC-SA 3.0).",
	"https://creativecommons.org/licenses/by-nc-nd/3.0": "Creative Commons Attribution Non-Commercial No Derivatives 3.0 Unported license (CC BY-NC-ND 3.0).",
}

// Unspecified is returned for any URL not recognised by the static table.
const Unspecified = "Unspecified"

// Resolve returns the human-readable licence name for url, or Unspecified if
// url does not match a recognised Creative Commons licence URL (exact match,
// modulo a trailing slash and scheme-relative http/https).
func Resolve(url string) string {
	key := normalize(url)
	if name, ok := names[key]; ok {
		return name
	}
	return Unspecified
}

func normalize(url string) string {
	url = strings.TrimSuffix(url, "/")
	if strings.HasPrefix(url, "http://") {
		url = "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}
