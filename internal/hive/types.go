package hive

import "fmt"

// Record is one thread row from the new-posts page. Records compare
// structurally, so two values with the same title, forum and href are the
// same record.
type Record struct {
	Title string
	Forum string
	Href  string
}

// String renders the record the way the topics list shows it.
func (r Record) String() string {
	return fmt.Sprintf("%s :: %s", r.Forum, r.Title)
}
