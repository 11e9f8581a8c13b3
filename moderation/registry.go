package moderation

import (
	"sort"
	"sync"
	"time"

	"relaybot/model"

	"github.com/bwmarrin/discordgo"
)

// PendingRegistry holds submissions awaiting review, keyed by a
// monotonic counter. ID 从 0 开始递增，删除后也不会复用。
type PendingRegistry struct {
	mu     sync.Mutex
	posts  map[int64]*model.PendingPost
	nextID int64
}

func NewPendingRegistry() *PendingRegistry {
	return &PendingRegistry{
		posts: make(map[int64]*model.PendingPost),
	}
}

// Insert stores a new submission and returns the stored record with
// its assigned ID.
func (r *PendingRegistry) Insert(submitterID string, payload *discordgo.Message, now time.Time) *model.PendingPost {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	post := &model.PendingPost{
		ID:          id,
		SubmitterID: submitterID,
		Payload:     payload,
		SubmittedAt: now,
	}
	r.posts[id] = post
	return post
}

func (r *PendingRegistry) Get(id int64) (*model.PendingPost, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	return post, ok
}

// Remove atomically claims and deletes a submission. Only the first
// caller gets the record; concurrent resolvers on the same ID observe
// not-found, so a post can never be approved and rejected at once.
func (r *PendingRegistry) Remove(id int64) (*model.PendingPost, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, false
	}
	delete(r.posts, id)
	return post, true
}

// Restore re-files a previously claimed record under its original ID.
// 仅用于发布失败后把投稿放回待审核队列，计数器不受影响。
func (r *PendingRegistry) Restore(post *model.PendingPost) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts[post.ID] = post
}

// PendingIDs returns the currently pending IDs in ascending order.
func (r *PendingRegistry) PendingIDs() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.posts))
	for id := range r.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// OlderThan returns the IDs of submissions received before the cutoff,
// in ascending order. Used by the expiry sweeper.
func (r *PendingRegistry) OlderThan(cutoff time.Time) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int64
	for id, post := range r.posts {
		if post.SubmittedAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *PendingRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.posts)
}
