// Package services - services/metrics_service.go
// file: services/metrics_service.go

package services

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	awssession "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"kamaru-web/logger"
)

// Namespace for all Kamaru front-end metrics
var metricsNamespace = "KamaruWeb"

// Reuse a single CloudWatch client for all metrics calls
var cwClient *cloudwatch.CloudWatch

// InitMetrics enables CloudWatch publishing. When never called (or
// called with false) every publish below is a no-op, so local
// development needs no AWS credentials.
func InitMetrics(enabled bool) {
	if !enabled {
		cwClient = nil
		return
	}
	cwClient = cloudwatch.New(awssession.Must(awssession.NewSession()))
}

// PublishGatewayLatency pushes per-operation latency for API calls and
// counts failures. Wired into the gateway as its call observer.
func PublishGatewayLatency(op string, d time.Duration, err error) {
	putMetric("GatewayLatencyMs", float64(d.Milliseconds()), "Milliseconds", op)
	if err != nil {
		putMetric("GatewayErrors", 1, "Count", op)
	}
}

// PublishLogin counts successful logins, split by role.
func PublishLogin(isAdmin bool) {
	role := "user"
	if isAdmin {
		role = "admin"
	}
	putMetric("Logins", 1, "Count", role)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, dimension string) {
	if cwClient == nil {
		return
	}
	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Operation"),
						Value: aws.String(dimension),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Errorf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
