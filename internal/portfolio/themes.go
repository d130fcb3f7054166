package portfolio

// themeStyles holds the stylesheet shipped with each theme. The page markup
// is identical across themes; only the CSS differs.
var themeStyles = map[Theme]string{
	ThemeMinimal: `body {
  max-width: 680px;
  margin: 0 auto;
  padding: 2rem 1rem;
  font-family: Georgia, serif;
  color: #222;
  line-height: 1.6;
}
h1 { font-size: 1.8rem; margin-bottom: 0.2rem; }
h2 { font-size: 1.1rem; border-bottom: 1px solid #ddd; padding-bottom: 0.3rem; }
.headline { color: #666; margin-top: 0; }
.contact { list-style: none; padding: 0; }
.contact li { display: inline; margin-right: 1rem; }
.meta { color: #666; font-size: 0.9rem; }
.skills { list-style: none; padding: 0; }
.skills li { display: inline-block; margin: 0 0.6rem 0.3rem 0; }
a { color: #222; }
`,

	ThemeModern: `body {
  max-width: 760px;
  margin: 0 auto;
  padding: 2.5rem 1.5rem;
  font-family: "Helvetica Neue", Arial, sans-serif;
  color: #1a1a2e;
  line-height: 1.7;
  background: #fafafa;
}
header { border-left: 5px solid #4361ee; padding-left: 1.2rem; }
h1 { font-size: 2.2rem; margin-bottom: 0.1rem; }
h2 { color: #4361ee; text-transform: uppercase; font-size: 0.95rem; letter-spacing: 0.1em; }
.headline { color: #555; margin-top: 0; font-size: 1.1rem; }
.contact { list-style: none; padding: 0; }
.contact li { display: inline; margin-right: 1.2rem; }
.job, .school { background: #fff; border-radius: 8px; padding: 1rem 1.2rem; margin-bottom: 0.8rem; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
.meta { color: #777; font-size: 0.9rem; }
.skills { list-style: none; padding: 0; }
.skills li { display: inline-block; background: #e8ecfb; border-radius: 999px; padding: 0.2rem 0.8rem; margin: 0 0.4rem 0.4rem 0; font-size: 0.9rem; }
a { color: #4361ee; }
`,

	ThemeClassic: `body {
  max-width: 720px;
  margin: 0 auto;
  padding: 2rem 1rem;
  font-family: "Times New Roman", Times, serif;
  color: #000;
  line-height: 1.5;
}
header { text-align: center; border-bottom: 3px double #000; padding-bottom: 1rem; }
h1 { font-size: 1.9rem; margin-bottom: 0.2rem; letter-spacing: 0.05em; }
h2 { font-size: 1.15rem; font-variant: small-caps; border-bottom: 1px solid #000; }
.headline { font-style: italic; margin-top: 0; }
.contact { list-style: none; padding: 0; }
.contact li { display: inline; margin: 0 0.6rem; }
.meta { font-style: italic; font-size: 0.95rem; }
.skills { list-style: none; padding: 0; }
.skills li { display: inline; margin-right: 0.8rem; }
a { color: #000; }
`,
}
