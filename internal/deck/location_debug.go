//go:build !release

package deck

const showLocation = true
