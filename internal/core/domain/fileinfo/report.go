/*
Package fileinfo defines the permission report produced by the fi command.
*/
package fileinfo

/*
Report is the access summary for one path at one instant. It is derived on
demand and never stored. Exists is checked first; when it is false the other
fields are left at their zero values.
*/
type Report struct {
	Path        string // Path as typed by the user
	Exists      bool
	AbsPath     string
	Read        bool
	Write       bool
	Execute     bool
	Size        int64
	HasSize     bool // Size was requested and could be determined
	Contents    string
	HasContents bool // Contents were requested and the file could be read
}
