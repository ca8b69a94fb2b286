package domain

// Category10 is the ten-colour categorical palette used to tell entries apart.
var Category10 = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// EntryColor returns the hex colour for entry i, cycling through Category10.
func EntryColor(i int) string {
	if i < 0 {
		i = -i
	}
	return Category10[i%len(Category10)]
}
