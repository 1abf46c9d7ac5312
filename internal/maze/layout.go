package maze

// Board dimensions of the compiled-in maze.
const (
	Width  = 20
	Height = 20
)

// DefaultLayout is the fixed maze the game is played on.
var DefaultLayout = []string{
	"####################",
	"#.#...........#..#.#",
	"#.####.##...###..#.#",
	"#.#..###..###...##.#",
	"#....#........###..#",
	"#.##...##.##.......#",
	"#..###..##......#..#",
	"##...#.#....#.###..#",
	"#.##.#.#..###.#....#",
	"#....#.##.#...#..###",
	"####.#....##..#.##.#",
	"#....###...##......#",
	"#.##...#....###..#.#",
	"#.#....#.##...#.#..#",
	"#...#.....#...#..#.#",
	"#.###.#...#...#..###",
	"###.#.#.#####...##.#",
	"#...#.#.#...#.###..#",
	"#.#...#............#",
	"####################",
}

// Default returns a fresh maze built from DefaultLayout.
func Default() *Maze {
	m, err := Parse(DefaultLayout)
	if err != nil {
		panic(err) // compiled-in layout is always valid
	}
	return m
}
