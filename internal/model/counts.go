package model

// FileCount holds per-kind symbol counts for a single input file.
type FileCount struct {
	File       Path
	Procedures int
	Classes    int
	Methods    int
}

// Total returns the number of symbols counted for the file.
func (fc FileCount) Total() int {
	return fc.Procedures + fc.Classes + fc.Methods
}
