package sfc

// scopedStyle is the placeholder style section every component gets.
const scopedStyle = "\n\n<style scoped>\n</style>"

// WriteStyle returns the scoped style section.
func WriteStyle() string {
	return scopedStyle
}
