// Package defaults centralizes timeout, rate limit, and filesystem constants
// used across godriver packages. Keeping them in one place makes the
// operational envelope of the tool reviewable at a glance.
package defaults
