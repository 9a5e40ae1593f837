package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	lib "github.com/theoremus-urban-solutions/travel-order-resolver"
)

// readOrders reads id,sentence lines from path, or stdin when path is empty.
// Blank lines and '#' comments are skipped. A line without a comma is taken
// as a bare sentence and gets its line number as id.
func readOrders(path string) ([]lib.Order, error) {
	f := os.Stdin
	if path != "" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}

	var orders []lib.Order
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, sentence, ok := strings.Cut(line, ",")
		if !ok {
			orders = append(orders, lib.Order{ID: strconv.Itoa(n), Sentence: line})
			continue
		}
		orders = append(orders, lib.Order{ID: strings.TrimSpace(id), Sentence: strings.TrimSpace(sentence)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
