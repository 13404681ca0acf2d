package videotex

// Screen receives the operations a Stream decodes from Videotex bytes
type Screen interface {
	// Drawing
	Draw(b byte)
	DrawSpecial(code byte)
	DrawComposed(r rune) // accented letter
	Repeat(count int)
	Bell()

	// Cursor movement
	CursorLeft()
	CursorRight()
	CursorDown()
	CursorUp()
	CarriageReturn()
	Home()
	CursorPosition(row, col int)

	// Erasing
	ClearScreen()
	ClearLineEnd()

	// Character sets
	ShiftOut()
	ShiftIn()

	// Attributes (the byte that followed ESC)
	SelectAttribute(code byte)

	// Misc
	Debug(args ...interface{})
}
