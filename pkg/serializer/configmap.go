// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dapur-nusantara/resep/pkg/defaults"
	"github.com/dapur-nusantara/resep/pkg/header"
	"github.com/dapur-nusantara/resep/pkg/k8s/client"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// configMapLabels are applied to every ConfigMap resep writes.
func configMapLabels(component string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":       "resep",
		"app.kubernetes.io/component":  component,
		"app.kubernetes.io/managed-by": "resep",
	}
}

func (t *TableIO) readConfigMap(ctx context.Context, loc Location) ([]byte, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cs, err := t.kubeClient()
	if err != nil {
		return nil, err
	}

	cm, err := cs.CoreV1().ConfigMaps(loc.Namespace).Get(readCtx, loc.Name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", loc.Namespace, loc.Name, err)
	}

	data, ok := cm.Data[defaults.ConfigMapDataKey]
	if !ok {
		return nil, fmt.Errorf("ConfigMap %s/%s has no %s key", loc.Namespace, loc.Name, defaults.ConfigMapDataKey)
	}
	return []byte(data), nil
}

func (t *TableIO) writeConfigMap(ctx context.Context, loc Location, data []byte) error {
	cs, err := t.kubeClient()
	if err != nil {
		return err
	}
	return upsertConfigMap(ctx, cs, loc.Namespace, loc.Name, "book", map[string]string{
		defaults.ConfigMapDataKey: string(data),
		"timestamp":               time.Now().UTC().Format(time.RFC3339),
	})
}

// upsertConfigMap merges data into the named ConfigMap, creating it when it
// does not exist. Keys not present in data are preserved.
func upsertConfigMap(ctx context.Context, cs client.Interface, namespace, name, component string, data map[string]string) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	api := cs.CoreV1().ConfigMaps(namespace)
	existing, err := api.Get(writeCtx, name, metav1.GetOptions{})
	switch {
	case apierrors.IsNotFound(err):
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      name,
				Namespace: namespace,
				Labels:    configMapLabels(component),
			},
			Data: data,
		}
		if _, err := api.Create(writeCtx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create ConfigMap %s/%s: %w", namespace, name, err)
		}
		slog.Info("created ConfigMap", "namespace", namespace, "name", name)
		return nil
	case err != nil:
		return fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	updated := existing.DeepCopy()
	if updated.Data == nil {
		updated.Data = make(map[string]string, len(data))
	}
	for k, v := range data {
		updated.Data[k] = v
	}
	if updated.Labels == nil {
		updated.Labels = make(map[string]string)
	}
	for k, v := range configMapLabels(component) {
		updated.Labels[k] = v
	}

	if _, err := api.Update(writeCtx, updated, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update ConfigMap %s/%s: %w", namespace, name, err)
	}
	slog.Info("updated ConfigMap", "namespace", namespace, "name", name)
	return nil
}

// ConfigMapWriter writes a rendered document to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	kube      client.Interface
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format. A nil clientset is
// discovered on first write.
func NewConfigMapWriter(namespace, name string, format Format, kube client.Interface) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
		kube:      kube,
	}
}

// Serialize renders data and stores it under listing.<ext>. The ConfigMap
// also records the format, the document kind when data carries a header,
// and the write time.
func (w *ConfigMapWriter) Serialize(ctx context.Context, data any) error {
	content, err := render(w.format, data)
	if err != nil {
		return err
	}

	cs := w.kube
	if cs == nil {
		cs, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	kind := "document"
	if h, ok := data.(interface{ GetKind() header.Kind }); ok && h.GetKind() != "" {
		kind = strings.ToLower(h.GetKind().String())
	}

	slog.Info("configmap operation",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	return upsertConfigMap(ctx, cs, w.namespace, w.name, kind, map[string]string{
		"listing." + w.format.Extension(): string(content),
		"format":                          string(w.format),
		"timestamp":                       time.Now().UTC().Format(time.RFC3339),
	})
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	path := strings.TrimPrefix(uri, ConfigMapURIScheme)
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	if strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot contain '/'")
	}

	return namespace, name, nil
}
