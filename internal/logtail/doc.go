// Package logtail reads the end of the hivewatch log file for display in the
// dashboard.
//
// Read keeps a ring buffer of the last maxLines non-empty lines, so the cost
// does not depend on how large the file has grown. Pretty turns zerolog's JSON
// records into the short console form used on screen.
package logtail
