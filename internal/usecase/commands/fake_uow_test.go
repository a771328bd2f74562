//go:build unit

package commands

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"fitcoach-booking/internal/domain/appointment"
	"fitcoach-booking/internal/domain/availability"
	"fitcoach-booking/internal/domain/member"
	"fitcoach-booking/internal/domain/notification"
	"fitcoach-booking/internal/domain/schedule"
	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/infra"
	sqlc "fitcoach-booking/internal/infra/sqlc/generated"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memUoW serialises transactions over an in-memory copy of the schema. A failed
// transaction leaves the committed state untouched.
type memUoW struct {
	mu    sync.Mutex
	state *memState

	// deliverErr, when set, is returned by Inbox().Deliver.
	deliverErr error
}

type apptRow struct {
	id        uuid.UUID
	coachID   uuid.UUID
	member    appointment.MemberSnapshot
	tr        schedule.TimeRange
	status    appointment.Status
	reason    string
	createdAt time.Time
	updatedAt time.Time
}

type creditRow struct {
	total, used int
}

type jobRow struct {
	seq int
	job shared.NotificationJob
	st  notification.JobStatus
	err *string
}

type inboxRow struct {
	n    *notification.Notification
	read bool
}

type keyID struct {
	key, user uuid.UUID
}

type memState struct {
	users   map[uuid.UUID]shared.UserSnapshot
	credits map[uuid.UUID]creditRow
	slots   map[uuid.UUID]*availability.Slot
	appts   map[uuid.UUID]apptRow
	jobs    map[uuid.UUID]jobRow
	inbox   map[uuid.UUID]inboxRow
	keys    map[keyID]shared.IdempotencyRecord
	seq     int
}

func newMemUoW() *memUoW {
	return &memUoW{state: &memState{
		users:   map[uuid.UUID]shared.UserSnapshot{},
		credits: map[uuid.UUID]creditRow{},
		slots:   map[uuid.UUID]*availability.Slot{},
		appts:   map[uuid.UUID]apptRow{},
		jobs:    map[uuid.UUID]jobRow{},
		inbox:   map[uuid.UUID]inboxRow{},
		keys:    map[keyID]shared.IdempotencyRecord{},
	}}
}

func (s *memState) clone() *memState {
	return &memState{
		users:   maps.Clone(s.users),
		credits: maps.Clone(s.credits),
		slots:   maps.Clone(s.slots),
		appts:   maps.Clone(s.appts),
		jobs:    maps.Clone(s.jobs),
		inbox:   maps.Clone(s.inbox),
		keys:    maps.Clone(s.keys),
		seq:     s.seq,
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// seeding helpers

func (u *memUoW) addUser(name string, role user.Role) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()
	id := uuid.New()
	u.state.users[id] = shared.UserSnapshot{ID: id, Email: role.String() + "@example.com", Name: name, Role: role, IsActive: true}
	return id
}

func (u *memUoW) addMember(name string, total int) uuid.UUID {
	id := u.addUser(name, user.RoleMember)
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.credits[id] = creditRow{total: total}
	return id
}

func (u *memUoW) addSlot(coachID uuid.UUID, start time.Time, d time.Duration) uuid.UUID {
	s, err := availability.NewSlot(coachID, schedule.TimeRange{Start: start, End: start.Add(d)})
	if err != nil {
		panic(err)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.state.slots[s.ID()] = s
	return s.ID()
}

// inspection helpers

func (u *memUoW) snapshot() *memState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.clone()
}

func (s *memState) slotsOf(coachID uuid.UUID) []*availability.Slot {
	var out []*availability.Slot
	for _, sl := range s.slots {
		if sl.CoachID() == coachID {
			out = append(out, sl)
		}
	}
	return out
}

func (s *memState) jobsFor(recipient uuid.UUID) []jobRow {
	var out []jobRow
	for _, j := range s.jobs {
		if j.job.RecipientID == recipient {
			out = append(out, j)
		}
	}
	slices.SortFunc(out, func(a, b jobRow) int { return a.seq - b.seq })
	return out
}

func (s *memState) inboxOf(userID uuid.UUID) []inboxRow {
	var out []inboxRow
	for _, r := range s.inbox {
		if r.n.UserID() == userID {
			out = append(out, r)
		}
	}
	return out
}

// shared.UnitOfWork

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &memTx{uow: u, st: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return memReads{st: u.state}
}

type memTx struct {
	uow *memUoW
	st  *memState
}

func (t *memTx) Slots() shared.SlotRepository                 { return memSlots{st: t.st} }
func (t *memTx) Appointments() shared.AppointmentRepository   { return memAppts{st: t.st} }
func (t *memTx) Members() shared.MemberRepository             { return memMembers{st: t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return memKeys{st: t.st} }
func (t *memTx) Notifications() shared.NotificationRepository { return memJobs{st: t.st} }
func (t *memTx) Inbox() shared.InboxRepository                { return memInbox{st: t.st, fail: t.uow.deliverErr} }
func (t *memTx) Reads() shared.CommandReads                   { return memReads{st: t.st} }
func (t *memTx) DB() sqlc.DBTX                                { return nil }

func (s *memState) holds(coachID uuid.UUID, tr schedule.TimeRange) bool {
	for _, a := range s.appts {
		if a.coachID == coachID && a.status.Holds() && a.tr.Equal(tr) {
			return true
		}
	}
	return false
}

func (s *memState) hasSlot(coachID uuid.UUID, tr schedule.TimeRange) bool {
	for _, sl := range s.slots {
		if sl.CoachID() == coachID && sl.TimeRange().Equal(tr) {
			return true
		}
	}
	return false
}

type memSlots struct{ st *memState }

func (r memSlots) CreateMany(_ context.Context, _ sqlc.DBTX, coachID uuid.UUID, slots []*availability.Slot) ([]*availability.Slot, error) {
	var created []*availability.Slot
	for _, s := range slots {
		if r.st.hasSlot(coachID, s.TimeRange()) || r.st.holds(coachID, s.TimeRange()) {
			continue
		}
		r.st.slots[s.ID()] = s
		created = append(created, s)
	}
	return created, nil
}

func (r memSlots) Claim(_ context.Context, _ sqlc.DBTX, coachID, slotID uuid.UUID) (*availability.Slot, error) {
	s, ok := r.st.slots[slotID]
	if !ok || s.CoachID() != coachID {
		return nil, notFound("slot not found")
	}
	delete(r.st.slots, slotID)
	return s, nil
}

func (r memSlots) FindByID(_ context.Context, _ sqlc.DBTX, slotID uuid.UUID) (*availability.Slot, error) {
	s, ok := r.st.slots[slotID]
	if !ok {
		return nil, notFound("slot not found")
	}
	return s, nil
}

func (r memSlots) Restore(_ context.Context, _ sqlc.DBTX, slot *availability.Slot) (bool, error) {
	if r.st.hasSlot(slot.CoachID(), slot.TimeRange()) {
		return false, nil
	}
	r.st.slots[slot.ID()] = slot
	return true, nil
}

func (r memSlots) Delete(_ context.Context, _ sqlc.DBTX, coachID, slotID uuid.UUID) error {
	s, ok := r.st.slots[slotID]
	if !ok || s.CoachID() != coachID {
		return notFound("slot not found")
	}
	delete(r.st.slots, slotID)
	return nil
}

type memAppts struct{ st *memState }

func (r memAppts) Create(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
	if r.st.holds(a.CoachID(), a.TimeRange()) {
		return infra.WrapRepoErr("appointment overlaps", nil, infra.KindDuplicateKey)
	}
	r.st.appts[a.ID()] = rowOf(a)
	return nil
}

func (r memAppts) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, ok := r.st.appts[id]
	if !ok {
		return nil, notFound("appointment not found")
	}
	reason, _ := appointment.NewReason(row.reason)
	return appointment.ReconstructAppointment(row.id, row.coachID, row.member, row.tr, row.status, reason, row.createdAt, row.updatedAt), nil
}

func (r memAppts) UpdateStatus(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment, expected appointment.Status) error {
	row, ok := r.st.appts[a.ID()]
	if !ok || row.status != expected {
		return infra.WrapRepoErr("appointment status changed", nil, infra.KindConflict)
	}
	r.st.appts[a.ID()] = rowOf(a)
	return nil
}

func (r memAppts) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID, expected appointment.Status) error {
	row, ok := r.st.appts[id]
	if !ok || row.status != expected {
		return infra.WrapRepoErr("appointment status changed", nil, infra.KindConflict)
	}
	delete(r.st.appts, id)
	return nil
}

func rowOf(a *appointment.Appointment) apptRow {
	return apptRow{
		id:        a.ID(),
		coachID:   a.CoachID(),
		member:    a.Member(),
		tr:        a.TimeRange(),
		status:    a.Status(),
		reason:    a.CancellationReason().Value(),
		createdAt: a.CreatedAt(),
		updatedAt: a.UpdatedAt(),
	}
}

type memMembers struct{ st *memState }

func (r memMembers) FindCreditForUpdate(_ context.Context, _ sqlc.DBTX, memberID uuid.UUID) (*member.Credit, error) {
	c, ok := r.st.credits[memberID]
	if !ok {
		return nil, notFound("member profile not found")
	}
	return member.NewCredit(memberID, c.total, c.used)
}

func (r memMembers) SaveCredit(_ context.Context, _ sqlc.DBTX, credit *member.Credit, _ time.Time) error {
	if _, ok := r.st.credits[credit.MemberID()]; !ok {
		return notFound("member profile not found")
	}
	r.st.credits[credit.MemberID()] = creditRow{total: credit.Total(), used: credit.Used()}
	return nil
}

type memKeys struct{ st *memState }

func (r memKeys) TryInsert(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	id := keyID{key, userID}
	if _, ok := r.st.keys[id]; ok {
		return nil
	}
	r.st.keys[id] = shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (r memKeys) ClaimExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (int64, error) {
	id := keyID{key, userID}
	rec, ok := r.st.keys[id]
	if !ok || !rec.ExpiresAt.Before(now) {
		return 0, nil
	}
	rec.RequestHash = requestHash
	rec.Status = shared.IdempotencyProcessing
	rec.ResultAppointmentID = nil
	rec.ExpiresAt = expiresAt
	r.st.keys[id] = rec
	return 1, nil
}

func (r memKeys) UpdateStatusCompleted(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, _ string, appointmentID uuid.UUID) error {
	id := keyID{key, userID}
	rec := r.st.keys[id]
	rec.Status = shared.IdempotencyCompleted
	rec.ResultAppointmentID = &appointmentID
	r.st.keys[id] = rec
	return nil
}

func (r memKeys) DeleteExpired(_ context.Context, _ sqlc.DBTX, now time.Time) (int64, error) {
	var n int64
	for id, rec := range r.st.keys {
		if rec.ExpiresAt.Before(now) {
			delete(r.st.keys, id)
			n++
		}
	}
	return n, nil
}

type memJobs struct{ st *memState }

func (r memJobs) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, recipientID uuid.UUID, payload []byte, runAt time.Time) error {
	r.st.seq++
	id := uuid.New()
	r.st.jobs[id] = jobRow{
		seq: r.st.seq,
		job: shared.NotificationJob{ID: id, Kind: kind, Topic: topic, RecipientID: recipientID, Payload: payload, RunAt: runAt},
		st:  notification.JobQueued,
	}
	return nil
}

func (r memJobs) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time) (*shared.NotificationJob, error) {
	var best *jobRow
	for _, j := range r.st.jobs {
		if j.st != notification.JobQueued || j.job.RunAt.After(now) {
			continue
		}
		if best == nil || j.job.RunAt.Before(best.job.RunAt) || (j.job.RunAt.Equal(best.job.RunAt) && j.seq < best.seq) {
			cp := j
			best = &cp
		}
	}
	if best == nil {
		return nil, notFound("no due notification job")
	}
	job := best.job
	return &job, nil
}

func (r memJobs) UpdateJobStatus(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status notification.JobStatus, attempts int, lastError *string, runAt time.Time) error {
	j, ok := r.st.jobs[jobID]
	if !ok {
		return notFound("notification job not found")
	}
	j.st = status
	j.job.Attempts = attempts
	j.job.RunAt = runAt
	j.err = lastError
	r.st.jobs[jobID] = j
	return nil
}

type memInbox struct {
	st   *memState
	fail error
}

func (r memInbox) Deliver(_ context.Context, _ sqlc.DBTX, n *notification.Notification) (bool, error) {
	if r.fail != nil {
		return false, r.fail
	}
	for _, row := range r.st.inbox {
		if row.n.JobID() == n.JobID() {
			return false, nil
		}
	}
	r.st.inbox[n.ID()] = inboxRow{n: n}
	return true, nil
}

func (r memInbox) MarkRead(_ context.Context, _ sqlc.DBTX, userID, notificationID uuid.UUID) error {
	row, ok := r.st.inbox[notificationID]
	if !ok || row.n.UserID() != userID {
		return notFound("notification not found")
	}
	row.read = true
	r.st.inbox[notificationID] = row
	return nil
}

func (r memInbox) MarkAllRead(_ context.Context, _ sqlc.DBTX, userID uuid.UUID) (int64, error) {
	var n int64
	for id, row := range r.st.inbox {
		if row.n.UserID() == userID && !row.read {
			row.read = true
			r.st.inbox[id] = row
			n++
		}
	}
	return n, nil
}

type memReads struct{ st *memState }

func (r memReads) MemberByID(_ context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	u, ok := r.st.users[id]
	c, hasProfile := r.st.credits[id]
	if !ok || !hasProfile {
		return nil, notFound("member not found")
	}
	return &shared.MemberSnapshot{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		IsActive:      u.IsActive,
		TotalSessions: c.total,
		UsedSessions:  c.used,
	}, nil
}

func (r memReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user not found")
	}
	return &u, nil
}

func (r memReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.keys[keyID{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	return &rec, nil
}

// recFeed records published events.
type recFeed struct {
	mu     sync.Mutex
	events map[string][]shared.Event
}

func newRecFeed() *recFeed {
	return &recFeed{events: map[string][]shared.Event{}}
}

func (f *recFeed) Publish(_ context.Context, topic string, event shared.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[topic] = append(f.events[topic], event)
	return nil
}

func (f *recFeed) types(topic string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, e := range f.events[topic] {
		out = append(out, e.Type)
	}
	return out
}
