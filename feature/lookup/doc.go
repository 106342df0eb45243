// Package lookup implements the batch client for the HLR carrier lookup service.
//
// One HTTP GET is issued per subscriber number, with the URL built from a
// configured template:
//
//	https://hlr.example/api?login={login}&pass={password}&msisdn={number}
//
// FetchMany runs the calls through an errgroup limited to the configured
// concurrency, optionally paced by a token bucket. Every call carries its own
// timeout. Transport errors, timeouts, non-2xx statuses and bodies that are not
// a JSON object become a failed LookupResult for that number only.
// The client never retries.
package lookup
