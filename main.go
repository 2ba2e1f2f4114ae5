package main

import "github.com/alexvk/mealtrack/cmd/mealtrack"

func main() {
	mealtrack.Execute()
}
