package main

import "foodapp/food-svc/internal/commands"

func main() {
	commands.Execute()
}
