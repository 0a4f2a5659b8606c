// Package toast provides the transient success indicator shown after a form
// is accepted. The indicator owns its auto-hide timer, so a new submission
// can cancel a pending hide deterministically instead of relying on
// remove-then-recreate ordering.
package toast
