package themes

import "github.com/alecthomas/chroma"
import "github.com/alecthomas/chroma/styles"

var DifgoDark = styles.Register(chroma.MustNewStyle("difgo", chroma.StyleEntries{
	chroma.Background: "#d0d0d0 bg:#1c1c1c",
	chroma.Comment: "#a8a8a8",
	chroma.GenericInserted: "#90EE90",
	chroma.GenericDeleted: "#FF69B4",
	chroma.GenericEmph: "#FFD700",
	chroma.LineNumbers: "#626262",
}))

var DifgoLight = styles.Register(chroma.MustNewStyle("difgo-light", chroma.StyleEntries{
	chroma.Background: "#303030 bg:#ffffff",
	chroma.Comment: "#a8a8a8",
	chroma.GenericInserted: "#3a8a45",
	chroma.GenericDeleted: "#c04858",
	chroma.GenericEmph: "#b08000",
	chroma.LineNumbers: "#9e9e9e",
}))
