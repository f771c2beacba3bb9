package a

import (
	"fmt"
	"os"
)

func bare() {
	fmt.Println("hello")             // want `avoid bare fmt.Println, write to an explicit writer or the logger`
	fmt.Printf("%d\n", 42)           // want `avoid bare fmt.Printf, write to an explicit writer or the logger`
	fmt.Print("hello")               // want `avoid bare fmt.Print, write to an explicit writer or the logger`
	fmt.Fprintln(os.Stderr, "hello") // explicit writer, allowed
	_ = fmt.Sprintf("%d", 42)
}
