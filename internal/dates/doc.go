// Package dates parses and renders calendar dates exchanged as YYYY-MM-DD
// strings. A Date carries no time-of-day and no time zone.
package dates
