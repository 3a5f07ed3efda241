package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the gridview version and build time.",
		Usage: "gridview version",
		Run: func(args []string) error {
			printVersion()
			return nil
		},
	})
}
