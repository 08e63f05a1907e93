// Package event delivers field change notifications.
//
// The Notifier is synchronous: Publish invokes every subscribed handler in
// registration order before returning, matching the one-edit-at-a-time
// processing model of the field. A panicking handler is isolated so it
// cannot abort the edit that triggered it.
package event
