package update

import "github.com/sandeepkv93/lanes/internal/model"

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

// shiftStatus steps through the lanes, wrapping at both ends.
func shiftStatus(s model.Status, step int) model.Status {
	n := len(model.Statuses)
	idx := s.Index()
	if idx < 0 {
		return model.Statuses[0]
	}
	return model.Statuses[((idx+step)%n+n)%n]
}
