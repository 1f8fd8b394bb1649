package utils

import (
	"fmt"
	"os"
	"sort"
	"strconv"
)

func Max(x, y int) int {
	if x < y {
		return y
	}
	return x
}

func Min(x, y int) int {
	if x <= y {
		return x
	}
	return y
}

func MaxString(arr []string) int {
	maxLength := 0
	for _, str := range arr {
		if len(str) > maxLength {
			maxLength = len(str)
		}
	}
	return maxLength
}

func ReadFileToString(filePath string) (string, error) {
	filecontent, err := os.ReadFile(filePath)
	if err != nil { return "", err }
	return string(filecontent), nil
}

func PadLeft(str string, length int) string {
	format := fmt.Sprintf("%%%ds", length)
	return fmt.Sprintf(format, str)
}

func PadRight(str string, length int) string {
	return fmt.Sprintf("%-*s", length, str)
}

func CenterNumber(brw int, width int) string {
	lineNumber := strconv.Itoa(brw)
	padding := width - len(lineNumber)
	leftPad := fmt.Sprintf("%*s", padding/2, "")
	rightPad := fmt.Sprintf("%*s", padding-(padding/2), "")
	lineNumber = leftPad + lineNumber + rightPad
	return lineNumber
}

type Set map[int]struct{}

func (this Set) Add(value int) { this[value] = struct{}{} }
func (this Set) Contains(value int) bool {
	_, exists := this[value]
	return exists
}

// returns all keys in the set, sorted.
func (this Set) GetKeys() []int {
	keys := make([]int, 0, len(this))
	for key := range this { keys = append(keys, key) }
	sort.Ints(keys)
	return keys
}

func (this Set) Print() {
	for _, lineNum := range this.GetKeys() {
		fmt.Println(lineNum)
	}
}
