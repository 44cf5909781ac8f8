// Command dshunter is the CLI entry point for the exact Minimum Dominating
// Set solver: solve/verify PACE instances and convert between the .gr and
// .ads on-disk formats.
package main

func main() {
	Execute()
}
