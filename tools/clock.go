package tools

// TimeLayout renders e.g. "02:30 PM, March 04, 2025".
const TimeLayout = "03:04 PM, January 02, 2006"

func (r *Registry) currentTime() string {
	return r.now().Format(TimeLayout)
}
