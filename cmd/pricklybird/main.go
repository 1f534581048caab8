/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/pricklybird/pricklybird/cmd/pricklybird/cmd"

func main() {
	cmd.Execute()
}
