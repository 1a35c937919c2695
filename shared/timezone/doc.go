// Package timezone keeps every timestamp in the practice's local time.
//
// Bookable slots, appointment dates and record metadata are all expressed
// in the zone the practice operates in, so the package is initialized once
// from the APP_TIMEZONE environment variable (an IANA name such as
// "America/Sao_Paulo" or "UTC") and the rest of the code goes through
// timezone.Now, timezone.Format and timezone.Parse instead of the time
// package directly.
package timezone
