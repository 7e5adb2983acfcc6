package optbst

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// The sentinel is drawn once and shared by all empty child slots, mirroring
// how it is shared in memory.
func Tree2Dot(tree Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	var walk func(node *Node)
	walk = func(node *Node) {
		seen := ids.find(node) > 0
		ID := ids.alloc(node)
		if node.IsSentinel() {
			if !seen {
				nodelist += fmt.Sprintf("\"%d\" %s;\n", ID, sentinelDotNode())
			}
			return
		}
		label := fmt.Sprintf("%s\\n“%s”", node.key, node.value)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles())
		walk(node.left)
		walk(node.right)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(node.left))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(node.right))
	}
	walk(tree.Root())
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func sentinelDotNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles() string {
	return "style=filled,color=black,fillcolor=\"#a3d7e4\",shape=box"
}
