package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/data4life/data4life-api/hotspot"
)

// task names shared between the api enqueuer and the background worker
const (
	TaskProximityCheck        = "proximity_check"
	TaskBroadcastNotification = "broadcast_notification"
)

// BackgroundManager runs the data4life background jobs: proximity checks
// for citizen location updates and admin notification broadcasts
type BackgroundManager struct {
	pipeline   *hotspot.Pipeline
	dispatcher *hotspot.Dispatcher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(pipeline *hotspot.Pipeline, dispatcher *hotspot.Dispatcher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		pipeline:   pipeline,
		dispatcher: dispatcher,
		taskServer: taskServer,
	}
}

// RegisterTasks binds all background job functions to their task names
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.taskServer.RegisterTask(TaskProximityCheck, m.ProximityCheck); err != nil {
		return err
	}
	return m.taskServer.RegisterTask(TaskBroadcastNotification, m.BroadcastNotification)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("data4life-worker", 5)
	return m.worker.Launch()
}
