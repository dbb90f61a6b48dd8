package css

import "sync"

// userAgentCSS is the per-tag default stylesheet, mirroring common browser
// defaults for the supported element set (body's 8px margin matters for
// matching reference layouts).
const userAgentCSS = `
html { display: block; margin: 0; padding: 0; }
body { display: block; margin: 8px; padding: 0; font-size: 16px; }
div { display: block; }
span { display: inline; }
p { display: block; margin-top: 1em; margin-bottom: 1em; }
h1 { display: block; font-size: 2em; margin-top: 0.67em; margin-bottom: 0.67em; font-weight: bold; }
h2 { display: block; font-size: 1.5em; margin-top: 0.83em; margin-bottom: 0.83em; font-weight: bold; }
a { color: #0645ad; }
button { display: inline-block; padding: 1px 6px; border: 2px outset #767676; background-color: #f0f0f0; color: #000; text-align: center; }
input { display: inline-block; padding: 1px 2px; border: 2px inset #767676; background-color: #fff; }
`

var (
	uaSheetOnce sync.Once
	uaSheet     *Stylesheet
)

// userAgentSheet returns the process-wide user-agent stylesheet. Parsed once
// before first use and never mutated, so it is safe to share across
// concurrently processed documents.
func userAgentSheet() *Stylesheet {
	uaSheetOnce.Do(func() {
		sheet, err := parseStylesheetOrigin(userAgentCSS, OriginUserAgent)
		if err != nil {
			// The table is a compile-time constant; a parse failure is a
			// programming error.
			panic(err)
		}
		uaSheet = sheet
	})
	return uaSheet
}
