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

// Package client builds the Kubernetes clientset used by cm:// recipe book
// locations.
//
// GetKubeClient discovers the configuration once per process and caches the
// result, error included:
//
//	cs, cfg, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	log.Printf("auth: %s", client.AuthMethod(cfg))
//
// Discovery order: an explicit kubeconfig path, the KUBECONFIG environment
// variable, ~/.kube/config when it exists, and finally the in-cluster
// service account. BuildKubeClient skips the cache.
//
// Callers that need a fake for tests accept an Interface and take
// k8s.io/client-go/kubernetes/fake.NewClientset() in its place.
package client
