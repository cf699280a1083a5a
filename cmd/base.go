package cmd

var registered bool

func RegisterBaseCommands() {
	if registered {
		return
	}
	registered = true

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
}
