// Package age converts birthdates into whole-year ages.
//
// Ages are computed with calendar subtraction: a birthday that has not yet
// been reached in the current year is not counted. A birthdate that cannot be
// parsed yields Unknown (-1) instead of an error at the call sites that only
// need a number; Unknown is never classified as a minor. A birthdate after
// the reference day yields 0.
package age
