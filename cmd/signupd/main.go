/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/mergington/signupd/cmd/signupd/cmd"

func main() {
	cmd.Execute()
}
