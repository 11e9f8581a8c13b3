package moderation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"relaybot/model"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	userMsgs     map[string][]string
	adminNotices map[string][]int64
	relayed      []*model.PendingPost
	failAdmins   map[string]bool
	failRelay    bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		userMsgs:     make(map[string][]string),
		adminNotices: make(map[string][]int64),
		failAdmins:   make(map[string]bool),
	}
}

func (f *fakeNotifier) SendUser(userID, content string) error {
	f.userMsgs[userID] = append(f.userMsgs[userID], content)
	return nil
}

func (f *fakeNotifier) NotifyAdmin(adminID string, post *model.PendingPost) error {
	if f.failAdmins[adminID] {
		return errors.New("admin unreachable")
	}
	f.adminNotices[adminID] = append(f.adminNotices[adminID], post.ID)
	return nil
}

func (f *fakeNotifier) Relay(post *model.PendingPost) error {
	if f.failRelay {
		return errors.New("channel unreachable")
	}
	f.relayed = append(f.relayed, post)
	return nil
}

func (f *fakeNotifier) lastMsg(userID string) string {
	msgs := f.userMsgs[userID]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

type fakeArchive struct {
	records []string
}

func (f *fakeArchive) RecordDecision(post *model.PendingPost, adminID, verdict string) error {
	f.records = append(f.records, fmt.Sprintf("%d/%s/%s", post.ID, adminID, verdict))
	return nil
}

const (
	userA  = "user-a"
	admin1 = "admin-1"
	admin2 = "admin-2"
)

func newTestService(notifier *fakeNotifier, archive Archiver) *Service {
	return NewService(
		NewPendingRegistry(),
		NewCooldownGate(30*time.Minute),
		notifier,
		archive,
		[]string{admin1, admin2},
	)
}

func pngMessage(userID string) *discordgo.Message {
	return &discordgo.Message{
		ID:     "msg-1",
		Author: &discordgo.User{ID: userID},
		Attachments: []*discordgo.MessageAttachment{
			{URL: "https://cdn.example/a.png", ContentType: "image/png", Width: 640, Height: 480},
		},
	}
}

func pdfMessage(userID string) *discordgo.Message {
	return &discordgo.Message{
		ID:     "msg-2",
		Author: &discordgo.User{ID: userID},
		Attachments: []*discordgo.MessageAttachment{
			{URL: "https://cdn.example/a.pdf", ContentType: "application/pdf"},
		},
	}
}

func TestSubmitAcceptsImageAndNotifiesAdmins(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	now := time.Now()

	result := svc.Submit(pngMessage(userA), now)

	require.Equal(t, SubmitAccepted, result.Status)
	assert.EqualValues(t, 0, result.ID)
	assert.Equal(t, 1, svc.Registry().Len())

	// 冷却已记录
	allowed, _ := svc.cooldown.CanSubmit(userA, now)
	assert.False(t, allowed)

	// 投稿人收到确认，两个管理员都收到 ID 0 的通知
	assert.Contains(t, notifier.lastMsg(userA), "等待管理员审核")
	assert.Equal(t, []int64{0}, notifier.adminNotices[admin1])
	assert.Equal(t, []int64{0}, notifier.adminNotices[admin2])
}

func TestSubmitRejectsNonImage(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)

	result := svc.Submit(pdfMessage(userA), time.Now())

	assert.Equal(t, SubmitInvalidMedia, result.Status)
	assert.Zero(t, svc.Registry().Len())
	assert.Empty(t, notifier.adminNotices[admin1])
	assert.Contains(t, notifier.lastMsg(userA), "只接受图片投稿")

	// 失败的投稿不应记录冷却
	allowed, _ := svc.cooldown.CanSubmit(userA, time.Now())
	assert.True(t, allowed)
}

func TestSubmitEnforcesCooldown(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	now := time.Now()

	first := svc.Submit(pngMessage(userA), now)
	require.Equal(t, SubmitAccepted, first.Status)

	second := svc.Submit(pngMessage(userA), now.Add(time.Minute))
	assert.Equal(t, SubmitOnCooldown, second.Status)
	assert.Equal(t, 29*time.Minute, second.Remaining)
	assert.Equal(t, 1, svc.Registry().Len())
	assert.Contains(t, notifier.lastMsg(userA), "29 分钟")
}

func TestSubmitAdminFanoutPartialFailure(t *testing.T) {
	notifier := newFakeNotifier()
	notifier.failAdmins[admin1] = true
	svc := newTestService(notifier, nil)

	result := svc.Submit(pngMessage(userA), time.Now())

	// 单个管理员不可达不影响投稿和其余通知
	require.Equal(t, SubmitAccepted, result.Status)
	assert.Empty(t, notifier.adminNotices[admin1])
	assert.Equal(t, []int64{0}, notifier.adminNotices[admin2])
}

func TestApprovePublishesAndNotifiesSubmitter(t *testing.T) {
	notifier := newFakeNotifier()
	archive := &fakeArchive{}
	svc := newTestService(notifier, archive)
	svc.Submit(pngMessage(userA), time.Now())

	result := svc.Approve(admin1, 0)

	require.Equal(t, ResolveOK, result.Status)
	assert.Zero(t, svc.Registry().Len())
	require.Len(t, notifier.relayed, 1)
	assert.Equal(t, userA, notifier.relayed[0].SubmitterID)
	assert.Contains(t, notifier.lastMsg(userA), "通过审核并发布")
	assert.Equal(t, []string{"0/admin-1/approved"}, archive.records)
}

func TestApproveUnknownIDListsPending(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	svc.Submit(pngMessage(userA), time.Now())

	result := svc.Approve(admin1, 5)

	assert.Equal(t, ResolveNotFound, result.Status)
	assert.Equal(t, []int64{0}, result.PendingIDs)
	assert.Equal(t, 1, svc.Registry().Len())
	assert.Empty(t, notifier.relayed)
}

func TestApproveDeniedForNonAdmin(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	svc.Submit(pngMessage(userA), time.Now())

	result := svc.Approve(userA, 0)

	assert.Equal(t, ResolveNotAdmin, result.Status)
	assert.Equal(t, 1, svc.Registry().Len())
	assert.Empty(t, notifier.relayed)
}

func TestApproveRelayFailureRestoresPost(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	svc.Submit(pngMessage(userA), time.Now())
	notifier.failRelay = true

	result := svc.Approve(admin1, 0)

	assert.Equal(t, ResolveRelayFailed, result.Status)
	// 发布失败后投稿回到待审核队列，保持原ID
	assert.Equal(t, []int64{0}, svc.Registry().PendingIDs())
	assert.NotContains(t, notifier.lastMsg(userA), "通过审核")

	notifier.failRelay = false
	retry := svc.Approve(admin1, 0)
	assert.Equal(t, ResolveOK, retry.Status)
}

func TestRejectNotifiesSubmitterWithoutRelay(t *testing.T) {
	notifier := newFakeNotifier()
	archive := &fakeArchive{}
	svc := newTestService(notifier, archive)
	svc.Submit(pngMessage(userA), time.Now())

	result := svc.Reject(admin2, 0)

	require.Equal(t, ResolveOK, result.Status)
	assert.Zero(t, svc.Registry().Len())
	assert.Empty(t, notifier.relayed)
	assert.Contains(t, notifier.lastMsg(userA), "未通过审核")
	assert.Equal(t, []string{"0/admin-2/rejected"}, archive.records)
}

func TestResolveRaceFirstWinnerOnly(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	svc.Submit(pngMessage(userA), time.Now())

	first := svc.Reject(admin1, 0)
	second := svc.Approve(admin2, 0)

	assert.Equal(t, ResolveOK, first.Status)
	assert.Equal(t, ResolveNotFound, second.Status)
	assert.Empty(t, notifier.relayed)
}

func TestExpireOlderThan(t *testing.T) {
	notifier := newFakeNotifier()
	archive := &fakeArchive{}
	svc := newTestService(notifier, archive)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	svc.Registry().Insert(userA, pngMessage(userA), base)
	svc.Registry().Insert("user-b", pngMessage("user-b"), base.Add(2*time.Hour))

	expired := svc.ExpireOlderThan(base.Add(time.Hour))

	assert.Equal(t, 1, expired)
	assert.Equal(t, []int64{1}, svc.Registry().PendingIDs())
	assert.Contains(t, notifier.lastMsg(userA), "自动失效")
	assert.Equal(t, []string{"0//expired"}, archive.records)
}

func TestIsAdmin(t *testing.T) {
	svc := newTestService(newFakeNotifier(), nil)

	assert.True(t, svc.IsAdmin(admin1))
	assert.False(t, svc.IsAdmin(userA))
}

func TestSubmitterMessageMentionsRemainingMinutes(t *testing.T) {
	notifier := newFakeNotifier()
	svc := newTestService(notifier, nil)
	now := time.Now()

	svc.Submit(pngMessage(userA), now)
	svc.Submit(pngMessage(userA), now.Add(90*time.Second))

	last := notifier.lastMsg(userA)
	assert.True(t, strings.HasPrefix(last, "⏳"), "cooldown notice should lead with the wait emoji: %q", last)
	assert.Contains(t, last, "28 分钟")
}
