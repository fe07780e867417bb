// Package shortcut defines the OS-abstract key request types that
// shortcut definitions produce and the mapper resolves, plus a parser
// for textual shortcut specifications.
//
// Requests carry two abstract modifier flags instead of concrete
// Ctrl/Meta: CtrlCmd is "Ctrl everywhere, Cmd on macOS" and WinCtrl is
// "Win everywhere, Ctrl on macOS". The mapper pins them to concrete
// modifiers at resolution time, so one definition serves every OS
// family.
//
// Specifications are written in the familiar plus-joined form, with a
// space separating the two parts of a chorded shortcut:
//
//	"ctrl+shift+/"
//	"cmd+k cmd+c"
//	"alt+f4"
package shortcut
