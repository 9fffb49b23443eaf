// Package view holds the page logic of the client: the forms and actions behind each
// route, their notices and the navigation they trigger.
//
// Views never render. They call the API, update the session through [Session], report
// the outcome through a notify.Notifier and return data for the front end to print.
// Failures are returned as *Failure once the user has been told about them, so callers
// can exit without repeating the message.
package view
