package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gritzko/iheap"
	"github.com/pierrec/lz4/v4"
)

var ErrNoInput = errors.New("no input files")

type num struct {
	v   int
	pos int
}

func (n *num) SetHeapIndex(i int) { n.pos = i }

type letter struct {
	v   byte
	pos int
}

func (l *letter) SetHeapIndex(i int) { l.pos = i }

func printNums(w io.Writer, h []*num) {
	for _, n := range h {
		fmt.Fprintf(w, "%d ", n.v)
	}
	fmt.Fprintln(w)
	for _, n := range h {
		fmt.Fprintf(w, "%d ", n.pos)
	}
	fmt.Fprintln(w)
}

func printLetters(w io.Writer, h []*letter) {
	for _, l := range h {
		fmt.Fprintf(w, "%c ", l.v)
	}
	fmt.Fprintln(w)
	for _, l := range h {
		fmt.Fprintf(w, "%d ", l.pos)
	}
	fmt.Fprintln(w)
}

// CmdDemo walks the two priority queue exercises from Sedgewick's
// Algorithms in C++ (1992), chapter 11: a max-heap of small integers
// driven by insert/replace, then a 12-letter heap where elements get
// removed or reprioritized through the slot they last recorded.
func CmdDemo(w io.Writer) error {
	nless := func(a, b *num) bool { return a.v < b.v }
	nums := make([]*num, 0, 8)
	for _, v := range []int{1, 5, 2, 6, 4, 8, 7, 3} {
		nums = append(nums, &num{v: v})
	}

	h := []*num{nums[0], nums[1]}
	iheap.Push(h, nless)
	fmt.Fprintln(w, "insert(1), insert(5):")
	printNums(w, h)

	h = append(h, nums[2])
	iheap.Push(h, nless)
	fmt.Fprintln(w, "\ninsert(2):")
	printNums(w, h)

	h = append(h, nums[3])
	iheap.Push(h, nless)
	fmt.Fprintln(w, "\ninsert(6):")
	printNums(w, h)

	h = append(h, nums[4])
	iheap.Push(h, nless)
	fmt.Fprintln(w, "\nreplace(4):")
	printNums(w, h)
	iheap.Pop(h, nless)
	printNums(w, h[:4])

	h[4] = nums[5]
	iheap.Push(h, nless)
	fmt.Fprintln(w, "\ninsert(8):")
	printNums(w, h)

	iheap.Pop(h, nless)
	fmt.Fprintln(w, "\nremove:")
	printNums(w, h[:4])

	h[4] = nums[6]
	iheap.Push(h, nless)
	fmt.Fprintln(w, "\ninsert(7):")
	printNums(w, h)

	h = append(h, nums[7])
	iheap.Push(h, nless)
	fmt.Fprintln(w, "\ninsert(3):")
	printNums(w, h)

	lless := func(a, b *letter) bool { return a.v < b.v }
	word := "EASYQUESTION"
	lets := make([]*letter, 0, len(word))
	for i := 0; i < len(word); i++ {
		lets = append(lets, &letter{v: word[i]})
	}
	lh := []*letter{lets[0]}
	for i := 1; i < len(lets); i++ {
		lh = append(lh, lets[i])
		iheap.Push(lh, lless)
		fmt.Fprintf(w, "\ninsert(%c):\n", lets[i].v)
		printLetters(w, lh)
	}

	// the sixth-inserted E removes itself through the slot it was
	// last told
	fmt.Fprintf(w, "\nremove E at slot %d:\n", lets[6].pos)
	iheap.PopAt(lh, lets[6].pos, lless)
	lh = lh[:len(lh)-1]
	printLetters(w, lh)

	fmt.Fprintf(w, "\nraise A at slot %d to V:\n", lets[1].pos)
	lets[1].v = 'V'
	iheap.Up(lh, lets[1].pos, lless)
	printLetters(w, lh)
	return nil
}

// CmdMerge k-way merges sorted text files line by line. Files ending
// in .lz4 are read through an lz4 frame decompressor.
func CmdMerge(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		return ErrNoInput
	}
	sources := make([]iheap.Source[string], 0, len(paths))
	scanners := make([]*bufio.Scanner, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		var r io.Reader = f
		if strings.HasSuffix(path, ".lz4") {
			r = lz4.NewReader(f)
		}
		sc := bufio.NewScanner(r)
		scanners = append(scanners, sc)
		sources = append(sources, func() (string, bool) {
			if sc.Scan() {
				return sc.Text(), true
			}
			return "", false
		})
	}
	out := bufio.NewWriter(w)
	err := iheap.MergeTo(func(line string) error {
		_, werr := fmt.Fprintln(out, line)
		return werr
	}, func(a, b string) bool { return a < b }, sources...)
	if err != nil {
		return err
	}
	for _, sc := range scanners {
		if scerr := sc.Err(); scerr != nil {
			return scerr
		}
	}
	return out.Flush()
}
