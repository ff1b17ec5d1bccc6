/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com
*/
package main

import "github.com/Pavel7004/goHidCmd/cmd"

func main() {
	cmd.Execute()
}
