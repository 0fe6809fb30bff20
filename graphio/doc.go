// Package graphio reads and writes the text artifacts of a run:
//
//   - adjacency lists in the networkx adjlist format, one line per vertex
//     ("source nbr nbr ..."), each edge listed once, '#' comments;
//   - coloring reports, the "<stem>_color_assignment.txt" files;
//   - output paths, all derived from one file stem per graph.
package graphio
