//go:build release

package deck

const showLocation = false
