package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted is GetKeys in ascending order.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

// UniqueSorted drops duplicates and returns the values in ascending order.
// The input is left untouched.
func UniqueSorted[A constraints.Ordered](vals []A) []A {
	seen := make(map[A]bool, len(vals))
	res := make([]A, 0, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			res = append(res, v)
		}
	}
	slices.Sort(res)
	return res
}

// Combinations3 returns every 3-element combination of vals in
// lexicographic index order.
func Combinations3[A any](vals []A) [][3]A {
	var res [][3]A
	for i := 0; i < len(vals)-2; i++ {
		for j := i + 1; j < len(vals)-1; j++ {
			for k := j + 1; k < len(vals); k++ {
				res = append(res, [3]A{vals[i], vals[j], vals[k]})
			}
		}
	}
	return res
}

// GatherAllMidiPaths returns path itself when it is a file, or every .mid
// and .midi file below it when it is a directory. maxNum 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(s)
		if strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi") {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}
