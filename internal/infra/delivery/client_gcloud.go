//go:build gcloud

package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type CloudTasksClient struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
}

func NewCloudTasksClient(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksClient, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	return &CloudTasksClient{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
	}, nil
}

func (c *CloudTasksClient) EnqueueReminder(ctx context.Context, task *ReminderTask) (*TaskResponse, error) {
	queuePath := fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		c.projectID, c.locationID, c.queueID)

	payload, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reminder task: %w", err)
	}

	taskName := fmt.Sprintf("%s/tasks/%s", queuePath, task.Identifier)

	cloudTask := &taskspb.Task{
		Name: taskName,
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        c.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}

	if !task.FireAt.IsZero() {
		cloudTask.ScheduleTime = timestamppb.New(task.FireAt)
	}

	created, err := c.client.CreateTask(ctx, &taskspb.CreateTaskRequest{
		Parent: queuePath,
		Task:   cloudTask,
	})
	if err != nil {
		// Task names are the reminder identifiers, so a duplicate create
		// means this reminder is already scheduled.
		if status.Code(err) == codes.AlreadyExists {
			slog.DebugContext(ctx, "reminder task already exists",
				slog.String("identifier", task.Identifier),
			)
			return &TaskResponse{TaskID: taskName, Status: "exists"}, nil
		}
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	return &TaskResponse{TaskID: created.GetName(), Status: "created"}, nil
}

func (c *CloudTasksClient) Close() error {
	return c.client.Close()
}
