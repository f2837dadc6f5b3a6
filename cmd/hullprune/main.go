package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/hullprune"
)

// Demo of hull pruning. Input on stdin should be newline separated points in
// the form "lon lat", one boundary point per line, in winding order. The
// pruned boundary is printed in the same form.
func main() {
	boundary := readBoundary(os.Stdin)

	changed, err := hullprune.PruneInterior(&boundary, hullprune.AutoTolerance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prune failed: %v\n", err)
		os.Exit(1)
	}

	if changed {
		fmt.Fprintf(os.Stderr, "pruned boundary to %d points\n", len(boundary))
	} else {
		fmt.Fprintln(os.Stderr, "boundary is already convex")
	}

	for _, sp := range boundary {
		fmt.Printf("%g %g\n", sp.Location.Longitude, sp.Location.Latitude)
	}
}

func readBoundary(in *os.File) hullprune.SearchPointVector {
	boundary := hullprune.SearchPointVector{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		boundary = append(boundary, parsePoint(line))
	}
	return boundary
}

func parsePoint(line string) hullprune.SearchPoint {
	parts := strings.Fields(line)
	lon, _ := strconv.ParseFloat(parts[0], 64)
	lat, _ := strconv.ParseFloat(parts[1], 64)
	return hullprune.SearchPoint{Location: hullprune.GeoPoint{Longitude: lon, Latitude: lat}}
}
