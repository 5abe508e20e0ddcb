package htmldoc

const css = `
    .it {
        font-style: italic;
    }
    .obj {
        display: inline-block;
    }
    .obj, .obj td {
        border-spacing: 0;
        padding: 0;
    }
    .obj-keys {
        vertical-align: top;
        text-align: right;
    }
    .obj-vals > * {
        vertical-align: bottom;
    }
    .or-alt {
        display: inline-block;
    }
    .role {
        font-size: .8em;
        margin-left: .2em;
        padding: 0 .3em;
        border-radius: .3em;
        background-color: #E0E8F0;
    }
    .title {
        margin-bottom: 0;
    }
    .subtitle {
        margin-top: 0;
        margin-left: 8em;
        font-size: .9em;
        background-color: #F0F0F0;
        padding: 0.5em;
    }
    .missing {
        color: #C00000;
    }
`

// CSS returns the style block the rendered markup expects.
func CSS() string { return "<style>" + css + "</style>\n" }
