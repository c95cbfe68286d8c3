/*
Copyright © 2022 NAME HERE <EMAIL ADDRESS>
*/
package main

import "contenttype/cmd"

func main() {
	cmd.Execute()
}
