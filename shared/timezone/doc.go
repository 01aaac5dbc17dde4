// Package timezone keeps wall-clock times in the configured APP_TIMEZONE
// (Asia/Ho_Chi_Minh by default) and calendar dates as midnight UTC.
//
//	now := timezone.Now()                         // audit timestamps, check-in time
//	today := timezone.Today()                     // calendar date for scheduling
//	dep, err := timezone.ParseDate("2026-04-30")  // departure/return/birth
//	s := timezone.FormatDate(&dep)                // *string "2026-04-30"
//
// The location is loaded once at import. Unknown zone names fall back to UTC.
package timezone
