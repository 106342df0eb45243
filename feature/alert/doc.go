// Package alert sends drift alerts through an HTTP SMS gateway.
//
// The gateway is addressed with a URL template such as
//
//	https://sms.example/send?user={login}&pass={password}&to={destination}&text={text}
//
// Delivery is best-effort: one attempt, no retry, no confirmation beyond the
// HTTP status.
package alert
