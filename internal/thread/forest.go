// Package thread 维护页面加载后的本地评论树。
// 初始树来自服务端的浅层组装（一级评论加一层回复），新发表的评论通过
// Merge 并入本地树，不重新拉取整棵树。Merge 不修改旧值，持有旧引用的
// 渲染方不会看到中间状态。
package thread

import (
	"github.com/yunhai/blog_go_server/internal/model/dto"
)

// Node 本地评论树节点，可以表示任意深度
type Node struct {
	ID        int64   `json:"id"`
	ParentID  *int64  `json:"parent_id,omitempty"`
	Author    string  `json:"author"`
	Content   string  `json:"content"`
	CreatedAt string  `json:"created_at"`
	Replies   []*Node `json:"replies,omitempty"`
}

// View 本地评论树和展示用的评论总数。
// 总数只统计一级评论，与页面上 "评论 (n)" 的口径一致。
type View struct {
	Nodes []*Node
	Count int
}

// NewView 从初始一级评论列表构建视图
func NewView(nodes []*Node) View {
	return View{
		Nodes: nodes,
		Count: len(nodes),
	}
}

// FromItems 从服务端的评论树载荷构建视图
func FromItems(items []*dto.CommentItem) View {
	return NewView(fromItems(items))
}

func fromItems(items []*dto.CommentItem) []*Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]*Node, len(items))
	for i, item := range items {
		nodes[i] = &Node{
			ID:        item.ID,
			ParentID:  item.ParentID,
			Author:    item.Author,
			Content:   item.Content,
			CreatedAt: item.CreatedAt,
			Replies:   fromItems(item.Replies),
		}
	}
	return nodes
}

// Merge 将新评论并入树中，返回新的视图，原视图不变。
//
// 一级评论插到最前（新的在前），计数加一。回复按 parent_id 在整棵树上
// 深度优先查找父节点，追加到其回复末尾（旧的在前），计数不变。找不到
// 父节点（父节点在未加载的深层）时退化为追加到一级列表末尾，计数同样
// 不变。重复并入同一节点不去重。
func (v View) Merge(n *Node) View {
	if n.ParentID == nil {
		nodes := make([]*Node, 0, len(v.Nodes)+1)
		nodes = append(nodes, n)
		nodes = append(nodes, v.Nodes...)
		return View{Nodes: nodes, Count: v.Count + 1}
	}

	nodes, ok := insert(v.Nodes, *n.ParentID, n)
	if !ok {
		// 孤儿回复兜底：父节点不在本地树时挂到一级列表末尾
		nodes = make([]*Node, 0, len(v.Nodes)+1)
		nodes = append(nodes, v.Nodes...)
		nodes = append(nodes, n)
	}
	return View{Nodes: nodes, Count: v.Count}
}

// insert 在 nodes 中查找 parentID 并追加 child，只复制查找路径上的节点，
// 未触及的子树与旧树共享
func insert(nodes []*Node, parentID int64, child *Node) ([]*Node, bool) {
	for i, n := range nodes {
		if n.ID == parentID {
			replies := make([]*Node, 0, len(n.Replies)+1)
			replies = append(replies, n.Replies...)
			replies = append(replies, child)

			cloned := *n
			cloned.Replies = replies
			return replace(nodes, i, &cloned), true
		}

		if len(n.Replies) > 0 {
			if replies, ok := insert(n.Replies, parentID, child); ok {
				cloned := *n
				cloned.Replies = replies
				return replace(nodes, i, &cloned), true
			}
		}
	}
	return nodes, false
}

func replace(nodes []*Node, i int, n *Node) []*Node {
	out := make([]*Node, len(nodes))
	copy(out, nodes)
	out[i] = n
	return out
}
