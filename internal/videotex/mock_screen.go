package videotex

import "fmt"

// MockScreen is a test implementation that logs all calls
type MockScreen struct {
	Calls []string
}

func NewMockScreen() *MockScreen {
	return &MockScreen{
		Calls: make([]string, 0),
	}
}

func (s *MockScreen) log(method string, args ...interface{}) {
	s.Calls = append(s.Calls, fmt.Sprintf("%s%v", method, args))
}

func (s *MockScreen) Draw(b byte)                 { s.log("Draw", string(rune(b))) }
func (s *MockScreen) DrawSpecial(code byte)       { s.log("DrawSpecial", code) }
func (s *MockScreen) DrawComposed(r rune)         { s.log("DrawComposed", string(r)) }
func (s *MockScreen) Repeat(count int)            { s.log("Repeat", count) }
func (s *MockScreen) Bell()                       { s.log("Bell") }
func (s *MockScreen) CursorLeft()                 { s.log("CursorLeft") }
func (s *MockScreen) CursorRight()                { s.log("CursorRight") }
func (s *MockScreen) CursorDown()                 { s.log("CursorDown") }
func (s *MockScreen) CursorUp()                   { s.log("CursorUp") }
func (s *MockScreen) CarriageReturn()             { s.log("CarriageReturn") }
func (s *MockScreen) Home()                       { s.log("Home") }
func (s *MockScreen) CursorPosition(row, col int) { s.log("CursorPosition", row, col) }
func (s *MockScreen) ClearScreen()                { s.log("ClearScreen") }
func (s *MockScreen) ClearLineEnd()               { s.log("ClearLineEnd") }
func (s *MockScreen) ShiftOut()                   { s.log("ShiftOut") }
func (s *MockScreen) ShiftIn()                    { s.log("ShiftIn") }
func (s *MockScreen) SelectAttribute(code byte)   { s.log("SelectAttribute", code) }
func (s *MockScreen) Debug(args ...interface{})   { s.log("Debug", args...) }
