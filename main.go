package main

import "onboarding-dashboard/cmd"

func main() {
	cmd.Execute()
}
