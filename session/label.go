package session

const initialRune = 'A'

// labelSequence yields A..Z, then AA, AB and so on.
type labelSequence struct {
	current int
}

func (s *labelSequence) next() string {
	label := ""
	for n := s.current + 1; n > 0; n = (n - 1) / 26 {
		label = string(rune(initialRune+(n-1)%26)) + label
	}
	s.current++
	return label
}

// Labels returns the input label of each hand slot, in hand order.
func Labels(amount int) []string {
	sequence := labelSequence{}
	labels := make([]string, amount)
	for index := range labels {
		labels[index] = sequence.next()
	}
	return labels
}
