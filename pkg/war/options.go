package war

// Options are options for creating a new game of War
type Options struct {
	PlayerOne string
	PlayerTwo string
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PlayerOne: "Player 1",
		PlayerTwo: "Player 2",
	}
}
