package singlelink

import (
	"bufio"
	"fmt"
	"io"
)

// Write renders col as a cluster report:
//
//	Clusters:
//	cluster 0: 0[0,0] 1[1,1]
//	cluster 1: 2[10,10]
//
// Clusters appear in collection order, points in storage order (ascending
// id for any cluster produced by a merge).
func Write(w io.Writer, col *Collection) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("Clusters:\n"); err != nil {
		return err
	}
	for i, c := range col.clusters {
		fmt.Fprintf(bw, "cluster %d: ", i)
		writeCluster(bw, c)
	}
	return bw.Flush()
}

// WriteCluster renders the points of c on a single line.
func WriteCluster(w io.Writer, c *Cluster) error {
	bw := bufio.NewWriter(w)
	writeCluster(bw, c)
	return bw.Flush()
}

func writeCluster(bw *bufio.Writer, c *Cluster) {
	for k, p := range c.points {
		if k > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(p.String())
	}
	bw.WriteByte('\n')
}
