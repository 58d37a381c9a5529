package fit

// Fits reports whether a measured text box stays inside the container on the
// checked axis. The comparison is non-strict: a box exactly as large as the
// container still fits. With AxisHeight the width check is skipped, with
// AxisWidth the height check is skipped, with AxisBoth both must pass.
func Fits(m Measurement, container Extent, axis Axis) bool {
	if axis != AxisHeight && m.Width > container.Width {
		return false
	}
	if axis != AxisWidth && m.Height > container.Height {
		return false
	}
	return true
}
